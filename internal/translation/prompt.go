package translation

import (
	"fmt"
	"strings"
)

const promptTemplate = `Translate the following HTML document into %s.

Important guidelines:
1. Preserve all HTML tags and attributes exactly as they are.
2. Only translate the text content between the tags.
3. Maintain any special formatting, links, or code snippets unchanged.
4. Keep the overall document structure intact.
5. Ensure that all opening and closing tags remain paired.
6. Do not translate variable names, function names, or other code elements.
7. Maintain any custom data attributes or IDs exactly as in the original.
8. Translate meta tags content and title tags as appropriate.

Here is the HTML document to translate:

%s
`

// BuildPrompt returns the instruction sent to the model for one document and language
func BuildPrompt(content, language string) string {
	return fmt.Sprintf(promptTemplate, language, content)
}

// CleanResponse removes a Markdown code fence the model may wrap around the
// document. A fence with nothing inside yields "". Anything else is returned
// verbatim.
func CleanResponse(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") || !strings.HasSuffix(trimmed, "```") || len(trimmed) < 6 {
		return text
	}

	body := strings.TrimSuffix(trimmed, "```")
	newline := strings.IndexByte(body, '\n')
	if newline < 0 {
		return text
	}
	// The opening fence line may carry a language tag such as ```html
	inner := strings.TrimSpace(body[newline+1:])
	if inner == "" {
		return ""
	}
	return inner + "\n"
}
