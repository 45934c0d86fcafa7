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


package ai

import "errors"

var (
	// ErrModelUnavailable indicates the serving endpoint cannot be reached.
	// Relaunching the endpoint requires operator intervention, so callers
	// abort the whole run rather than skipping chunks.
	ErrModelUnavailable = errors.New("model endpoint unavailable")

	// ErrEmptySummary indicates the model returned no usable output.
	ErrEmptySummary = errors.New("model returned empty summary")

	// ErrEmptyInput indicates Summarize was called with empty text.
	ErrEmptyInput = errors.New("input text is empty")
)
