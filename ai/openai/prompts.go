package openai

const summaryPrompt = `Summarize the given news article text.

Rules:
- Write a single plain-text paragraph, no headings, no bullet points.
- Preserve concrete facts: figures, dates, named people and institutions.
- Do not add information that is not in the text. Do not editorialize.
- If the text is a fragment of a longer article, summarize the fragment on
  its own; do not speculate about missing context.`
