// Package variant2 contains product family 2.
//
// ProductA and ProductB are empty value types. They carry no state, so every
// method is a pure function of the receiver's type and always returns the
// same text. Both products embed the "A2" / "B2" family tokens.
//
// Obtain matching products from compose.Variant2Factory. Constructing them
// directly is allowed (tests do it to exercise cross-family collaboration),
// but then pairing them correctly is up to the caller.
package variant2
