// Package highlight annotates source code with highlight scopes.
// It uses the Chroma library to do this work.
//
// A [Config] pairs a lexer with a query set that maps
// Chroma token types to scope names.
// Once configured with the list of recognized scope names,
// [Highlight] turns a source buffer into a stream of [Event]s:
// [EnterScope] and [ExitScope] bracket regions of the source,
// and [Text] covers byte ranges of it.
// Events are well nested and cover the entire buffer.
package highlight
