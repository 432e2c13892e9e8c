// Package transposition implements the classical columnar transposition cipher.
//
// Plaintext is written row by row into a grid whose width is the key length,
// then the columns are read top to bottom in the order given by the key.
// Decryption cuts the ciphertext back into columns and reads the grid row by
// row. This is a teaching cipher; it offers no real confidentiality.
//
// # Keys
//
// A key becomes a KeyOrder, the permutation of column indexes in reading
// order plus its inverse:
//
//   - KeywordOrder("ZEBRAS"): letters ranked by codepoint, equal letters left to right
//   - KeywordOrderCollated: the same with a Collator, e.g. NewLocaleCollation(language.Japanese)
//   - NumericOrder("3 1 4 2"), NumericOrder("3142"): an explicit permutation of 1..n
//   - IdentityOrder(n): no key, columns read left to right
//
// # Grid Modes
//
// In complete mode the last row is filled with a pad character (default 'X')
// so the grid is a rectangle. In incomplete mode the last row is left short
// and the leftmost columns are one cell taller than the rest.
//
// # Basic Usage
//
//	c, err := transposition.New(
//	    transposition.WithKeyword("ZEBRAS"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	enc, _ := c.Encrypt("We are discovered. Flee at once!")
//	// enc.Ciphertext == "EVLNXACDTXESEAXROFOXDEECXWIREE"
//
//	dec, _ := c.Decrypt(enc.Ciphertext)
//	// dec.Plaintext == "WEAREDISCOVEREDFLEEATONCE"
//
// # Low-level API
//
// The engine functions are pure and can be called directly:
//
//	key, _ := transposition.NumericOrder("3 1 4 2")
//	grid, _ := transposition.BuildGrid("ATTACKATDAWN", key.N, 'X', true)
//	ciphertext, _ := transposition.Encode(grid, key)
//	dec, _ := transposition.Decode(ciphertext, key, true, 'X', true)
//
// # Pad Stripping
//
// Auto-strip removes every trailing pad character from decrypted text. A
// plaintext that genuinely ends in the pad character loses those characters
// as well; choose a pad that does not occur at the end of your messages.
package transposition
