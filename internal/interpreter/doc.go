// Package interpreter turns a free-text movie request into a movie.FilterSet
// by asking a language model to extract structured fields.
//
// The model reply is read tolerantly: the first fenced code block wins when
// present, numbers may arrive as strings, and null or missing fields mean "no
// constraint". Every failure is recoverable. Interpret always returns a usable
// (possibly empty) FilterSet alongside an error wrapping either
// services.ErrProviderUnavailable or services.ErrUnparsableModelOutput.
package interpreter
