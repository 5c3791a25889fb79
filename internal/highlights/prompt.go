package highlights

import (
	"fmt"
	"strings"

	"clipforge/internal/transcript"
)

const selectionPrompt = `You are a specialist in editing viral short-form videos for TikTok, Reels, and YouTube Shorts.

Your task is to analyze the transcript provided by the user and identify the segments with the highest potential for retention, sharing, and comments. The selected segments must function as fully independent videos.

Selection criteria (mandatory):

Each segment must:
- Have a strong hook within the first 3-5 seconds (impactful statement, strong opinion, provocative question, or expectation break).
- Contain a complete idea with clear beginning, development, and explicit conclusion.
- Not depend on previous or external context.
- Include at least one of the following elements: strong emotion, controversy, surprise, revelation, bold opinion, impactful statement, or a short story with a clear takeaway.

Start and end rules (mandatory):

- The segment must begin at the start of a complete sentence.
- The segment must end only after the full conclusion of a thought.
- The last second must contain a complete declarative sentence.
- The segment must not end with unfinished connectors (e.g., because, but, so, therefore, however, and, etc.), incomplete ideas, promises of continuation, or sentences that depend on what comes next.

If a segment reaches 30 seconds but the idea is not fully concluded, expand the segment until the thought is fully completed, respecting the maximum limit of 120 seconds.

If it is not possible to fully conclude the idea before reaching 120 seconds, discard the segment.

Technical rules (mandatory):

- Return between 3 and 6 segments.
- Each segment must contain:
  - start (in seconds)
  - end (in seconds)
  - reason (objective explanation of the viral potential)
- Duration must be calculated as: duration = end - start.
- All segments must strictly satisfy: 30 <= (end - start) <= 120.
- Do not return any segment shorter than 30 seconds.
- Do not return any segment longer than 120 seconds.
- Timestamps must strictly respect the transcript boundaries.

Final validation before responding:

For each segment, internally confirm that:
- It works as a standalone video.
- The ending delivers a clear sense of closure.
- The viewer would not feel that something is missing.
- The hook appears immediately at the beginning.

Return ONLY valid JSON in the following format:

[
  {
    "start": 12,
    "end": 68,
    "reason": "Strong opening hook and bold opinion followed by a complete narrative arc with a clear conclusion."
  }
]

transcript:
%s`

// TranscriptText renders a document as timestamped lines suitable for
// inclusion in the selection prompt.
func TranscriptText(doc transcript.Document) string {
	lines := make([]string, 0, len(doc.Segments))
	for _, span := range doc.Segments {
		lines = append(lines, fmt.Sprintf("[%g - %g] %s", span.Start, span.End, span.Text))
	}
	return strings.Join(lines, "\n")
}

func buildPrompt(transcriptText string) string {
	return fmt.Sprintf(selectionPrompt, transcriptText)
}
