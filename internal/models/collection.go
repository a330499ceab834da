// collection.go
//
// Backend services for the Cheminova experience
// Copyright (c) 2026 ART+COM AG
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

package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// PathStepLength is the number of characters each tree level adds to a materialized path.
const PathStepLength = 4

// Collection groups media assets and scopes the permissions granted on them.
// Collections form a tree encoded as a materialized path: a descendant's Path
// always starts with the Path of each of its ancestors.
type Collection struct {
	ID        uint64  `gorm:"primaryKey;autoIncrement"`
	Name      string  `gorm:"size:255;not null"`
	Path      string  `gorm:"size:255;uniqueIndex;not null"`
	Depth     int     `gorm:"not null"`
	ParentID  *uint64 `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the table name for Collection
func (Collection) TableName() string {
	return "collections"
}

// PathContains reports whether the node at descendant lies in the subtree rooted at ancestor.
func PathContains(ancestor, descendant string) bool {
	if ancestor == "" {
		return false
	}
	return strings.HasPrefix(descendant, ancestor)
}

// PathStep encodes the n-th (1-based) child position as a fixed width base36 step.
func PathStep(n int) (string, error) {
	step := strings.ToUpper(strconv.FormatInt(int64(n), 36))
	if n < 1 || len(step) > PathStepLength {
		return "", fmt.Errorf("tree position %d out of range", n)
	}
	return strings.Repeat("0", PathStepLength-len(step)) + step, nil
}

// ParentPath returns the path of the parent node, or "" for a root path.
func ParentPath(path string) string {
	if len(path) <= PathStepLength {
		return ""
	}
	return path[:len(path)-PathStepLength]
}

// PathPosition decodes the 1-based child position of the last step of path.
func PathPosition(path string) (int, error) {
	if len(path) < PathStepLength || len(path)%PathStepLength != 0 {
		return 0, fmt.Errorf("malformed tree path %q", path)
	}
	n, err := strconv.ParseInt(path[len(path)-PathStepLength:], 36, 32)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("malformed tree path %q", path)
	}
	return int(n), nil
}
