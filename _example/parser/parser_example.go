package main

import (
	"log"

	"github.com/atemmel/lizp2"
	"github.com/atemmel/lizp2/ast"
)

func main() {
	input := `(fn_a (fn_b (89 A B (67 3.27))) (fn_c 66 3 53 hello 😊))`

	root, err := lizp.Parse([]byte(input))
	if err != nil {
		log.Fatal("lizp.Parse:", err)
	}

	ast.Print(root)
}
