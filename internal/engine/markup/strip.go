// Package markup turns standalone theme pages into embeddable fragments.
package markup

import (
	"regexp"
	"strings"
)

var (
	headBlockRe   = regexp.MustCompile(`(?is)<head\b[^>]*>(.*?)</head\s*>`)
	inlineStyleRe = regexp.MustCompile(`(?is)<style\b[^>]*>.*?</style\s*>`)
	scriptBlockRe = regexp.MustCompile(`(?is)<script\b([^>]*)>.*?</script\s*>`)
	srcAttrRe     = regexp.MustCompile(`(?i)(?:^|\s)src\s*=`)
	headOrderRe   = regexp.MustCompile(`(?is)<style\b[^>]*>.*?</style\s*>|<script\b[^>]*>.*?</script\s*>`)

	bodyBlockRe = regexp.MustCompile(`(?is)<body\b[^>]*>(.*)</body\s*>`)
	htmlOpenRe  = regexp.MustCompile(`(?is)^.*?<html\b[^>]*>`)
	htmlCloseRe = regexp.MustCompile(`(?is)</html\s*>.*$`)

	assetLinkRe   = regexp.MustCompile(`(?is)<link\b[^>]*\shref\s*=\s*["']?/?assets/[^>]*>`)
	assetScriptRe = regexp.MustCompile(`(?is)<script\b[^>]*\ssrc\s*=\s*["']?/?assets/[^>]*>\s*</script\s*>`)
	shellTagRe    = regexp.MustCompile(`(?is)<!doctype[^>]*>|</?(?:html|head|body)\b[^>]*>`)
)

// StripShell reduces a full HTML document to its body content, preceded by the
// inline style and script blocks of its head in document order.
// Link and script tags that point into the set's assets folder are removed,
// since the asset loader registers those files itself.
func StripShell(html string) string {
	blocks := inlineHeadBlocks(html)
	body := cleanBody(extractBody(html))

	if len(blocks) == 0 {
		return body
	}
	return strings.Join(blocks, "\n") + "\n" + body
}

func inlineHeadBlocks(html string) []string {
	head := headBlockRe.FindStringSubmatch(html)
	if head == nil {
		return nil
	}

	var blocks []string
	for _, block := range headOrderRe.FindAllString(head[1], -1) {
		if inlineStyleRe.MatchString(block) {
			blocks = append(blocks, strings.TrimSpace(block))
			continue
		}
		attrs := scriptBlockRe.FindStringSubmatch(block)
		if attrs != nil && !srcAttrRe.MatchString(attrs[1]) {
			blocks = append(blocks, strings.TrimSpace(block))
		}
	}
	return blocks
}

func extractBody(html string) string {
	if m := bodyBlockRe.FindStringSubmatch(html); m != nil {
		return m[1]
	}

	out := html
	if htmlOpenRe.MatchString(out) {
		out = htmlOpenRe.ReplaceAllLiteralString(out, "")
		out = htmlCloseRe.ReplaceAllLiteralString(out, "")
	}
	return headBlockRe.ReplaceAllLiteralString(out, "")
}

func cleanBody(body string) string {
	body = assetLinkRe.ReplaceAllLiteralString(body, "")
	body = assetScriptRe.ReplaceAllLiteralString(body, "")
	body = shellTagRe.ReplaceAllLiteralString(body, "")
	return strings.TrimSpace(body)
}
