// common.go
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

package handlers

import (
	"strconv"
	"strings"

	"github.com/artcom/cheminova-backend/internal/config"
	"github.com/artcom/cheminova-backend/internal/models"
	"github.com/artcom/cheminova-backend/internal/pages"
	"github.com/gofiber/fiber/v2"
)

// parseDepth reads the depth query parameter. Missing, negative or malformed
// values mean no children.
func parseDepth(c *fiber.Ctx) int {
	raw := strings.TrimSpace(c.Query("depth"))
	if raw == "" {
		return 0
	}
	depth, err := strconv.Atoi(raw)
	if err != nil || depth < 0 {
		return 0
	}
	return depth
}

// parseLocale reads the locale query parameter, lower cased
func parseLocale(c *fiber.Ctx) string {
	return strings.ToLower(strings.TrimSpace(c.Query("locale")))
}

// imageURL builds absolute media URLs below the configured site
func imageURL(cfg *config.Config) func(string) string {
	base := strings.TrimSuffix(cfg.SiteURL, "/") + cfg.MediaURL
	return func(file string) string {
		return base + file
	}
}

// imageList renders images in API form, never nil
func imageList(images []models.Image, urlFn func(string) string) []map[string]any {
	out := make([]map[string]any, 0, len(images))
	for _, img := range images {
		out = append(out, pages.ImageObject(img, urlFn))
	}
	return out
}
