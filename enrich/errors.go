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


package enrich

import "errors"

var (
	// ErrStoreRequired is returned when a driver is built without a store.
	ErrStoreRequired = errors.New("blob store required")

	// ErrSummarizerRequired is returned when the summarized stage runs
	// without a summarizer.
	ErrSummarizerRequired = errors.New("summarizer required")

	// ErrSourceBucketRequired indicates a missing source bucket name.
	ErrSourceBucketRequired = errors.New("source bucket required")

	// ErrDestBucketRequired indicates a missing destination bucket name.
	ErrDestBucketRequired = errors.New("destination bucket required")

	// ErrInvalidPoolSize indicates a worker pool size below 1.
	ErrInvalidPoolSize = errors.New("pool size must be at least 1")
)
