package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid         TokenType = iota
	TokenOpenExpression            // Open parenthesis: "("
	TokenCloseExpression           // Close parenthesis: ")"
	TokenOpenList                  // Open square bracket: "["
	TokenCloseList                 // Close square bracket: "]"
	TokenOpenMap                   // Open curly bracket: "{"
	TokenCloseMap                  // Close curly bracket: "}"
	TokenNewLine                   // Newline: "\n"
	TokenDoubleQuote               // Double quote: '"'
	TokenHash                      // Hash: "#"
	TokenWhitespace                // Space, tab, form feed or carriage return: \s\f\t\r
	TokenWord                      // Letters ([a-zA-Z]) and underscore
	TokenInteger                   // Integers
	TokenColon                     // Colon: ":"
	TokenDot                       // Dot: "."
	TokenBackslash                 // Backslash: "\"
	TokenSymbol                    // Anything else: "+", "-", "...", "😊"
	TokenEOF                       // End of file
)

var tokenValues = map[TokenType][]rune{
	TokenOpenList:        {'['},
	TokenCloseList:       {']'},
	TokenOpenMap:         {'{'},
	TokenCloseMap:        {'}'},
	TokenOpenExpression:  {'('},
	TokenCloseExpression: {')'},
	TokenNewLine:         {'\n'},
	TokenDoubleQuote:     {'"'},
	TokenHash:            {'#'},
	TokenWhitespace:      []rune(" \f\t\r"),
	TokenWord:            []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ_"),
	TokenInteger:         []rune("0123456789"),
	TokenColon:           {':'},
	TokenDot:             {'.'},
	TokenBackslash:       {'\\'},
}

var tokenNames = map[TokenType]string{
	TokenInvalid:         "invalid",
	TokenOpenList:        "open_list",
	TokenCloseList:       "close_list",
	TokenOpenMap:         "open_map",
	TokenCloseMap:        "close_map",
	TokenOpenExpression:  "open_expression",
	TokenCloseExpression: "close_expression",
	TokenNewLine:         "newline",
	TokenDoubleQuote:     "double_quote",
	TokenHash:            "hash",
	TokenWhitespace:      "whitespace",
	TokenWord:            "word",
	TokenInteger:         "integer",
	TokenColon:           "colon",
	TokenDot:             "dot",
	TokenBackslash:       "backslash",
	TokenSymbol:          "symbol",
	TokenEOF:             "EOF",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

func isTokenType(tt TokenType) func(r rune) bool {
	return func(r rune) bool {
		for _, v := range tokenValues[tt] {
			if v == r {
				return true
			}
		}
		return false
	}
}

// isSymbol returns true for runes that do not belong to any other token type.
func isSymbol(r rune) bool {
	for tt := range tokenValues {
		if isTokenType(tt)(r) {
			return false
		}
	}
	return true
}
