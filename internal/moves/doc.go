// Package moves defines the move table: which menu items are relocated from
// one category to another.
//
// A table is declared in TOML as a list of [[move]] blocks:
//
//	[[move]]
//	from  = "rice"
//	to    = "main"
//	items = ["싸먹는오리슬라이스", "떠먹는 유부초밥"]
//
// The built-in table is embedded from default_moves.toml; Load reads an
// external file with the same layout. Tables are validated before use so an
// item can never be claimed by two destinations of the same source.
package moves
