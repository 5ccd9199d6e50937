package js

// Keywords maps every reserved-word spelling (unconditional, strict-only,
// and contextual) to its Kind. The keyword matcher in trie.go looks up a
// fully consumed identifier here rather than walking a character trie: for
// a word list this short a map lookup after the fact is the same cost as a
// trie walk and far easier to keep correct by hand.
var Keywords = map[string]Kind{
	"break":      Break,
	"case":       Case,
	"catch":      Catch,
	"class":      Class,
	"const":      Const,
	"continue":   Continue,
	"debugger":   Debugger,
	"default":    Default,
	"delete":     Delete,
	"do":         Do,
	"else":       Else,
	"enum":       Enum,
	"export":     Export,
	"extends":    Extends,
	"false":      False,
	"finally":    Finally,
	"for":        For,
	"function":   Function,
	"if":         If,
	"import":     Import,
	"in":         In,
	"instanceof": Instanceof,
	"new":        New,
	"null":       Null,
	"return":     Return,
	"super":      Super,
	"switch":     Switch,
	"this":       This,
	"throw":      Throw,
	"true":       True,
	"try":        Try,
	"typeof":     Typeof,
	"var":        Var,
	"void":       Void,
	"while":      While,
	"with":       With,

	"implements": Implements,
	"interface":  Interface,
	"let":        Let,
	"package":    Package,
	"private":    Private,
	"protected":  Protected,
	"public":     Public,
	"static":     Static,
	"yield":      Yield,

	"as":    As,
	"async": Async,
	"await": Await,
	"from":  From,
	"of":    Of,
}
