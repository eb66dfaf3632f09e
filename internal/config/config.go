// Package config holds the surface phrases and keyword tables shared by the
// tokenizer, dispatcher and evaluators, so those stay in sync. The primitive
// statement handlers (internal/interp/primitives.go), numparse's "point" and
// the value package's text forms use their own literals instead.
package config

// Grimoire brackets.
const (
	OpenPhrase  = "begin the grimoire"
	ClosePhrase = "close the grimoire"
)

// Statement terminators.
const (
	TerminatorPeriod = '.'
	TerminatorColon  = ':'
	QuoteChar        = '"'
)

// Control-flow marker phrases.
const (
	PhraseIfSigns     = "if the signs show"
	PhraseRepeat      = "repeat the incantation"
	PhraseEndLoop     = "end loop"
	PhraseEndTraverse = "end traverse"
	PhraseEndRitual   = "end ritual"
	PhraseToBegin     = "to begin"
	PhraseThen        = "then"
	PhraseOtherwise   = "otherwise"
	PhraseTimes       = "times"
	PhraseDo          = "do"
	PhraseWithEach    = "with each"
	PhraseAtIndex     = "at"
	PhraseFillerIs    = "is"
)

// Handler keywords, first word of a statement, lowercased.
const (
	KeywordSummon   = "summon"
	KeywordEnchant  = "enchant"
	KeywordInscribe = "inscribe"
	KeywordInquire  = "inquire"
	KeywordAppend   = "append"
	KeywordPonder   = "ponder"
	KeywordBanish   = "banish"
	KeywordGaze     = "gaze"
	KeywordTransmute = "transmute"
	KeywordConjure  = "conjure"
	KeywordInvoke   = "invoke"
	KeywordReturn   = "return"
	KeywordTraverse = "traverse"
)

// Expression phrase markers.
const (
	PhraseCollectionHolding = "collection holding"
	PhraseAnd               = "and"
	PhraseAndThrough        = "and through"
	PhraseBoundWith         = "bound with"
	PhraseAtPosition        = "at position"
	PhraseLengthOf          = "length of"
	PhraseThroughRitual     = "through ritual"
	PhraseInvokeRitual      = "invoke the ritual"
	PhraseWith              = "with"
	PhraseMultipliedBy      = "multiplied by"
	PhraseDividedBy         = "divided by"
	PhraseGreaterBy         = "greater by"
	PhraseLesserBy          = "lesser by"
	PhraseTruth             = "truth"
	PhraseFalsehood         = "falsehood"
	PhraseWhispersOf        = "whispers of"
)

// Condition phrase markers.
const (
	PhraseOr          = "or"
	PhraseCondAnd     = "and"
	PhraseNot         = "not"
	PhraseEquals      = "equals"
	PhraseGreaterThan = "greater than"
	PhraseLessThan    = "less than"
)

// Subroutine definition phrase. Calling through a ritual reuses
// PhraseThroughRitual/PhraseInvokeRitual above.
const PhraseConjureRitualNamed = "conjure ritual named"

// Text forms of the Truth variant's default rendering.
const (
	TrueText  = "True"
	FalseText = "False"
	NoneText  = "None"
)

// SourceFileExtension is the conventional extension for spell source files.
const SourceFileExtension = ".spell"

// DefaultMaxPonderSeconds names the built-in default for the Ponder sleep
// cap. Nothing references it; internal/host's Native.MaxSleep stays at its
// zero value (no cap) unless a config sets max_ponder_seconds.
const DefaultMaxPonderSeconds = 0 // 0 means unbounded
