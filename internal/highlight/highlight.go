// Copyright 2025 Florian Zenker (flo@znkr.io)
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

// Package highlight provides syntax highlighting for unchanged lines using chroma.
package highlight

import (
	"sync"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// Style is the visual style of a token.
type Style struct {
	Foreground string // Hex color, empty for the default color.
	Bold       bool
}

// Token is a piece of source code with a uniform style.
type Token struct {
	Text  string
	Style Style
}

// Language returns the name of the language for filename or "" if the language is unknown.
func Language(filename string) string {
	lexer := lexers.Match(filename)
	if lexer == nil {
		return ""
	}
	return lexer.Config().Name
}

// Line splits a single line of source code into styled tokens. Adjacent tokens of the same style
// are merged and the tokens always concatenate to line. Line returns nil if the language is unknown
// or the lexer fails, and for an empty line.
func Line(language, line string) []Token {
	if line == "" {
		return nil
	}
	lexer := lexerFor(language)
	if lexer == nil {
		return nil
	}
	iterator, err := lexer.Tokenise(nil, line)
	if err != nil {
		return nil
	}

	var tokens []Token
	rest := line
	for t := iterator(); t != chroma.EOF && rest != ""; t = iterator() {
		// Most lexers append a newline to their input, cut tokens off at the end of the line.
		text := t.Value[:min(len(t.Value), len(rest))]
		rest = rest[len(text):]
		if text == "" {
			continue
		}
		style := tokenStyle(t.Type)
		if n := len(tokens); n > 0 && tokens[n-1].Style == style {
			tokens[n-1].Text += text
			continue
		}
		tokens = append(tokens, Token{Text: text, Style: style})
	}
	if rest != "" {
		return nil
	}
	return tokens
}

var lexerCache sync.Map // language -> chroma.Lexer, nil if unknown

func lexerFor(language string) chroma.Lexer {
	if l, ok := lexerCache.Load(language); ok {
		lexer, _ := l.(chroma.Lexer)
		return lexer
	}
	var lexer chroma.Lexer
	if l := lexers.Get(language); l != nil {
		lexer = l
	}
	lexerCache.Store(language, lexer)
	return lexer
}

// tokenStyle returns the style for a chroma token type. Colors are loosely based on the One Dark
// theme.
func tokenStyle(tt chroma.TokenType) Style {
	switch {
	case tt.InCategory(chroma.Keyword):
		return Style{Foreground: "#c678dd", Bold: true}
	case tt.InCategory(chroma.Comment):
		return Style{Foreground: "#5c6370"}
	case tt.InSubCategory(chroma.String):
		return Style{Foreground: "#98c379"}
	case tt.InSubCategory(chroma.Number):
		return Style{Foreground: "#d19a66"}
	case tt.InCategory(chroma.Operator):
		return Style{Foreground: "#56b6c2"}
	case tt == chroma.NameBuiltin || tt == chroma.NameBuiltinPseudo:
		return Style{Foreground: "#e5c07b"}
	case tt == chroma.NameFunction || tt == chroma.NameFunctionMagic:
		return Style{Foreground: "#61afef"}
	default:
		return Style{}
	}
}
