package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/angelmondragon/vendorpayments-backend/pkg/auth"
	"github.com/angelmondragon/vendorpayments-backend/pkg/config"
	"github.com/angelmondragon/vendorpayments-backend/pkg/enums"
	"github.com/angelmondragon/vendorpayments-backend/pkg/logger"
)

// stafftoken mints an admin bearer token for the host's staff accounts.
func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "stafftoken", Output: os.Stderr})

	_ = godotenv.Load()

	staffID := flag.String("staff-id", "", "host staff account id")
	role := flag.String("role", string(enums.StaffRoleShopManager), "administrator|shop_manager")
	flag.Parse()

	var jwtCfg config.JWTConfig
	if err := envconfig.Process(config.EnvPrefix, &jwtCfg); err != nil {
		logg.Error(ctx, "failed to load jwt config", err)
		os.Exit(1)
	}

	parsedRole, err := enums.ParseStaffRole(*role)
	if err != nil {
		logg.Error(ctx, "invalid role", err)
		os.Exit(1)
	}

	token, err := auth.MintStaffToken(jwtCfg, time.Now(), auth.StaffTokenPayload{StaffID: *staffID, Role: parsedRole})
	if err != nil {
		logg.Error(ctx, "failed to mint token", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
