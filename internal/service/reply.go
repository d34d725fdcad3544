package service

import (
	"strings"

	"lexibot/internal/domain"
)

// Button is an inline button bound to an action
type Button struct {
	Label  string
	Action domain.Action
}

// Reply is a transport-independent outgoing message
type Reply struct {
	Text     string
	Markdown bool
	Keyboard [][]Button
}

// Card is a presented word together with its reply
type Card struct {
	Entry   domain.WordEntry
	Example string
	Reply
}

const markdownSpecial = "_*`["

var markdownEscaper = strings.NewReplacer(
	"_", `\_`,
	"*", `\*`,
	"`", "\\`",
	"[", `\[`,
)

// escapeMarkdown escapes characters that are special in Telegram legacy Markdown.
// Only valid outside entities.
func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

// boldMarkdown renders s in bold. Legacy Markdown has no escaping inside an entity,
// so special characters close the entity and are emitted escaped between bold runs.
func boldMarkdown(s string) string {
	var b, run strings.Builder
	flush := func() {
		if run.Len() > 0 {
			b.WriteString("*" + run.String() + "*")
			run.Reset()
		}
	}
	for _, r := range s {
		if strings.ContainsRune(markdownSpecial, r) {
			flush()
			b.WriteString(escapeMarkdown(string(r)))
			continue
		}
		run.WriteRune(r)
	}
	flush()
	return b.String()
}
