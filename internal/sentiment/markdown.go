package sentiment

import (
	"regexp"
	"strings"

	"github.com/russross/blackfriday/v2"
)

var (
	linkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern  = regexp.MustCompile(`https?://\S+|www\.\S+`)
)

func RemoveLinks(input string) string {
	input = linkPattern.ReplaceAllString(input, "$1") // Keep only the text
	return urlPattern.ReplaceAllString(input, "")
}

// ConvertMarkdownToText keeps the readable text of a markdown document and
// drops markup, link targets and bare URLs. Case and punctuation survive.
func ConvertMarkdownToText(input string) string {
	md := blackfriday.New(blackfriday.WithNoExtensions())
	root := md.Parse([]byte(input))

	var sb strings.Builder
	root.Walk(func(node *blackfriday.Node, entering bool) blackfriday.WalkStatus {
		switch node.Type {
		case blackfriday.Text, blackfriday.Code, blackfriday.CodeBlock:
			if entering {
				sb.Write(node.Literal)
			}
		case blackfriday.Softbreak, blackfriday.Hardbreak:
			sb.WriteByte(' ')
		case blackfriday.Paragraph, blackfriday.Heading, blackfriday.Item:
			if !entering {
				sb.WriteByte(' ')
			}
		}
		return blackfriday.GoToNext
	})

	plainText := strings.Join(strings.Fields(sb.String()), " ")
	return strings.TrimSpace(RemoveLinks(plainText))
}
