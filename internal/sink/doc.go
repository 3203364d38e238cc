// Package sink delivers the encoded calendar document.
//
// A Sink receives a generator callback rather than a finished document, so
// each implementation decides when generation happens: the file sink runs it
// once and writes the result, the serve sink runs it from scratch on every
// HTTP request. Either way a failed generation produces no output at all;
// partial documents are never delivered.
package sink
