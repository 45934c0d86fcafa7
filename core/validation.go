// Copyright 2025 Econolens
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import (
	"fmt"
	"regexp"
	"time"
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidateDate checks that a date prefix is in yyyy-mm-dd form and denotes a
// real calendar date. Date prefixes scope listings and derived keys, so an
// invalid one is rejected before any processing starts.
func ValidateDate(date string) error {
	if !datePattern.MatchString(date) {
		return fmt.Errorf("%w: %q must match yyyy-mm-dd", ErrInvalidDate, date)
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidDate, date, err)
	}
	return nil
}

// ValidateArticleRecord validates an ArticleRecord before enrichment.
//
// Only Content is required; Title, Description, PublishedAt and Topic may be
// empty (the upstream API returns partial records for some sources).
func ValidateArticleRecord(record *ArticleRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrEmptyContent)
	}
	if record.Content == "" {
		return ErrEmptyContent
	}
	return nil
}
