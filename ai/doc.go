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


// Package ai provides the summarization abstraction used by the pipeline.
//
// The enrichment driver depends on the Summarizer interface only; concrete
// implementations live in subpackages:
//
//   - ai/openai: OpenAI-compatible chat endpoints via langchaingo
//   - ai/mock: a test double with injectable behavior
//
// The error taxonomy matters to callers: ErrModelUnavailable means the
// serving endpoint itself is down and the run must stop, while any other
// summarization error affects a single chunk only.
package ai
