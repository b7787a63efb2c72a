// Package lizp parses a parenthesized, Lisp-like textual language into a
// tree of typed nodes.
//
// Example:
//
//	(+ (- 5 (* 12 7)) 3)
//
// BNF:
//
//	<expr>            :: <atom> | <list> ;
//
//	<list>            :: "(" ( <expr> | <whitespace> )* ")" ;
//
//	<atom>            :: <bool> | <number> | <symbol> ;
//	<bool>            :: "true" | "false" ;
//	<number>          :: <any atom accepted by strconv.ParseFloat> ;
//	<symbol>          :: <atom-char>+ ;
//	<atom-char>       :: <any char except "(", ")" and whitespace> ;
//
//	<whitespace>      :: <whitespace-char>+ ;
//	<whitespace-char> :: " " | "\t" | "\n" | "\r" | "\v" | "\f" ;
//
// Atom classification happens after tokenization and is total: the
// literals "true" and "false" always win, then any atom accepted by
// strconv.ParseFloat is a number, and whatever remains is a symbol.
package lizp
