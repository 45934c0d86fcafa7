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


package blob

import "errors"

var (
	// ErrNotFound indicates that the requested object was not found.
	ErrNotFound = errors.New("object not found")

	// ErrEmptyKey indicates an empty object key or bucket name.
	ErrEmptyKey = errors.New("empty bucket or key")

	// ErrStoreClosed indicates that the store is closed.
	ErrStoreClosed = errors.New("store is closed")

	// ErrInvalidPageToken indicates a continuation token not issued by a
	// previous page of the same listing.
	ErrInvalidPageToken = errors.New("invalid page token")

	// ErrListerRequired is returned when a walker is built without a lister.
	ErrListerRequired = errors.New("lister required")
)
