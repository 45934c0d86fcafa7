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

import "errors"

// Domain validation errors
var (
	// ErrMalformedKey indicates a source key without a date/remainder
	// separator. Objects with malformed keys are skipped, never fatal.
	ErrMalformedKey = errors.New("malformed source key")

	// ErrInvalidStage indicates an unknown pipeline stage name.
	ErrInvalidStage = errors.New("invalid stage")

	// ErrInvalidDate indicates a date prefix not in yyyy-mm-dd form.
	ErrInvalidDate = errors.New("invalid date prefix")

	// ErrEmptyContent indicates the article content field is empty.
	ErrEmptyContent = errors.New("content cannot be empty")

	// ErrInvalidChunkIndex indicates a chunk index outside 1..total.
	ErrInvalidChunkIndex = errors.New("invalid chunk index")
)
