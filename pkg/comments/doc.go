// Package comments extracts code lines and caption ranges from annotated
// source files.
//
// Captions are ordinary line comments placed before the code they describe:
//
//	# Load the configuration
//	cfg = load()
//	validate(cfg)
//	# end
//
// The comment block becomes a [Comment] whose Start is the first following
// code line. A "<marker> end" terminator extends the most recent comment to
// the last emitted code line, so the example above yields Start=1, End=2.
//
// The marker is "#" by default and "//" for C-family languages; the family is
// resolved from the file name with chroma's lexer registry ([FamilyFor]).
// Files without a registered lexer fail with UNSUPPORTED_FILE_TYPE.
//
// Comment and terminator lines are stripped from the emitted code unless
// [Options].KeepComments is set. Either way, Start and End always index the
// emitted code (1-based), never the original file.
package comments
