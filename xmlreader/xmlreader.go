// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package xmlreader defines the diagnostic error an XML charset-sniffing
// reader reports when no encoding can be determined for a byte stream per
// the XML 1.0 specification and the RFC 3023 content-type rules.
package xmlreader

import "io"

// EncodingError reports that no charset encoding could be determined for an
// XML stream. It carries every piece of evidence the detection gathered,
// each independently possibly empty, plus the unconsumed remainder of the
// input so the caller can retry decoding with a fallback encoding of its
// choosing. The bytes consumed during detection cannot be replayed; Reader
// starts where detection stopped.
//
// EncodingError is recoverable by construction: catch it with errors.As,
// pick an encoding, and resume from Reader. It is not meant to reach an end
// user unhandled.
type EncodingError struct {
	msg string

	// BOMEncoding is the encoding indicated by a byte-order mark, empty
	// if the stream had none.
	BOMEncoding string
	// GuessedEncoding is the encoding guessed from the first bytes of
	// the stream, empty if nothing could be guessed.
	GuessedEncoding string
	// PrologEncoding is the encoding declared in the XML prolog, empty
	// if the prolog declared none.
	PrologEncoding string
	// ContentTypeMime is the MIME type of the content-type header used
	// during detection, empty when detection did not involve HTTP.
	ContentTypeMime string
	// ContentTypeEncoding is the charset parameter of that content-type,
	// empty when absent or when detection did not involve HTTP.
	ContentTypeEncoding string
	// Reader is the unconsumed remainder of the input stream. It is
	// forward-only.
	Reader io.Reader
}

// NewEncodingError builds the error for detection that did not involve an
// HTTP content-type.
func NewEncodingError(msg, bomEnc, guessEnc, prologEnc string, r io.Reader) *EncodingError {
	return &EncodingError{
		msg:             msg,
		BOMEncoding:     bomEnc,
		GuessedEncoding: guessEnc,
		PrologEncoding:  prologEnc,
		Reader:          r,
	}
}

// NewContentTypeEncodingError builds the error for detection driven by an
// HTTP content-type header.
func NewContentTypeEncodingError(msg, mime, ctEnc, bomEnc, guessEnc, prologEnc string, r io.Reader) *EncodingError {
	return &EncodingError{
		msg:                 msg,
		ContentTypeMime:     mime,
		ContentTypeEncoding: ctEnc,
		BOMEncoding:         bomEnc,
		GuessedEncoding:     guessEnc,
		PrologEncoding:      prologEnc,
		Reader:              r,
	}
}

func (e *EncodingError) Error() string {
	return e.msg
}
