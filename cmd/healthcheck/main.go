// main.go
//
// Backend services for the Cheminova experience
// Copyright (c) 2026 ART+COM AG
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of cheminova-backend.
// cheminova-backend is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// cheminova-backend is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with cheminova-backend.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/artcom/cheminova-backend/internal/config"
	"github.com/artcom/cheminova-backend/internal/database"
	"github.com/artcom/cheminova-backend/internal/logging"
	"github.com/artcom/cheminova-backend/internal/services"
	"github.com/goccy/go-json"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Keep stdout for the JSON result
	logging.Init(logging.Config{Level: "warn", Format: cfg.LogFormat, Output: os.Stderr})

	db, err := database.Connect(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer database.Close(db)

	// Perform health check
	result := services.HealthCheck(context.Background(), cfg, db)

	// Output result as JSON
	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to marshal health check result")
	}

	fmt.Println(string(output))

	// Exit with appropriate code
	if result.Status != "healthy" {
		os.Exit(1)
	}
	os.Exit(0)
}
