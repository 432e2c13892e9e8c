package transposition

// Encryption is the outcome of Cipher.Encrypt.
type Encryption struct {
	Plaintext  string    // normalized plaintext that was written into the grid
	Ciphertext string    // grid columns read in key order
	Grid       *Grid     // row-major grid including any pad cells
	Key        *KeyOrder // column order used
	PadCount   int       // pad cells appended in complete mode
}

// Reordered returns the grid with its columns rearranged into reading order.
func (e *Encryption) Reordered() (*Grid, error) {
	return e.Grid.Reordered(e.Key)
}

// Decryption is the outcome of Cipher.Decrypt.
type Decryption struct {
	Ciphertext string    // ciphertext with whitespace removed
	Plaintext  string    // recovered text, pad-stripped if enabled
	Grid       *Grid     // reassembled grid
	Key        *KeyOrder // column order used
	Stripped   int       // trailing pad characters removed
}

// Padded returns the recovered text before pad stripping.
func (d *Decryption) Padded() string {
	return d.Grid.readRows()
}
