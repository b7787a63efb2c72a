package main

import (
	"fmt"
	"log"

	"github.com/atemmel/lizp2/lexer"
)

func main() {
	input := `
		(fn_a
			(fn_b (89 A B (67 3.27)))
			(fn_c 66 3 53 hello true)
		)
	`

	tokens, err := lexer.Tokenize([]byte(input))
	if err != nil {
		log.Fatal("lexer.Tokenize:", err)
	}

	for i, tok := range tokens {
		line, col := tok.Pos()
		fmt.Printf("token[%d] (line: %d, col: %d)\n\t-> %q\n\n", i, line, col, tok.Text())
	}
}
