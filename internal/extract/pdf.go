// Package extract turns a stored PDF into plain text.
//
// It uses the ledongthuc/pdf library: pure Go, no CGO, which keeps the
// service a single static binary.
package extract

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"

	"findoc-analyzer/internal/common"
)

// Text extracts the plain text of every page of the PDF at path, in page
// order. Doubled newlines inside a page are collapsed to single ones and each
// page contributes a trailing newline. The result is a deterministic function
// of the file contents.
//
// It fails with common.ErrFileNotFound if the path does not exist and with
// common.ErrUnreadableDocument if the parser cannot open the file (corrupt
// data, wrong format, encrypted PDF) or if no page yields any text at all
// (scanned image-only documents).
func Text(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %q", common.ErrFileNotFound, path)
		}
		return "", fmt.Errorf("%w: stat %q: %v", common.ErrUnreadableDocument, path, err)
	}

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: opening %q: %v", common.ErrUnreadableDocument, path, err)
	}
	defer f.Close()

	var sb strings.Builder
	extracted := false
	for i := 1; i <= reader.NumPage(); i++ {
		text := pageText(reader.Page(i))
		if strings.TrimSpace(text) != "" {
			extracted = true
		}
		sb.WriteString(text)
		sb.WriteByte('\n')
	}
	if !extracted {
		return "", fmt.Errorf("%w: no extractable text in %q", common.ErrUnreadableDocument, path)
	}
	return sb.String(), nil
}

// pageText extracts one page, tolerating individual pages that yield no text
// (image-only pages, extraction quirks). Such pages contribute an empty
// string, keeping page order intact; a document where every page comes up
// empty is rejected by Text.
func pageText(page pdf.Page) string {
	if page.V.IsNull() {
		return ""
	}
	text, err := page.GetPlainText(nil)
	if err != nil {
		return ""
	}
	return strings.ReplaceAll(text, "\n\n", "\n")
}
