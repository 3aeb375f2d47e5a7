// Package monads holds what the option and try packages share: the sentinel
// errors raised on misuse, absent-marker detection and the covariant value
// equality both containers compare their payloads with.
//
// The containers themselves live in the sub packages:
// - option: Option[T], a value or nothing
// - try: Try[T], a value or the error that prevented producing it
package monads
