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


// Package blob defines the object storage abstractions used by the
// pipeline.
//
// The Store interface models a bucketed blob store with paginated listing,
// keyed get/put, and explicit content types. The Walker drives a Lister page
// by page to enumerate every object under a key prefix, hiding continuation
// tokens from callers.
//
// Implementations live in subpackages:
//
//   - blob/badger: a BadgerDB-backed local object store
//   - blob/memory: an in-memory store for tests
//
// All implementations must be safe for concurrent use.
package blob
