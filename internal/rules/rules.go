package rules

import "fmt"

// Rule represents a smarterr diagnostic code (SER-series).
type Rule int

const (
	ruleInvalid Rule = iota

	SER001Syntax
	SER002InheritedFields
	SER003UnknownDirective
	SER004DetachedDirective
	SER005MisplacedDirective

	SER010WrongItemKind
	SER011MissingResults
	SER012ErrorsetArity
	SER013ErrorsetShape
	SER014MethodMarkingArguments
	SER015ParentTypeInModule
	SER016UnknownQualifier

	SER020LocalConflict
	SER021HandledPassThrough
	SER022DuplicateBlock
	SER023InheritanceCycle

	SER030UnknownSourceSet
	SER031UnknownVariant
	SER032SourceKindMismatch
	SER033UnlistedVariant
	SER034DuplicateSet
	SER035DuplicateVariant
	SER036CrossPackageInheritance

	SER040DiscardedHelperResult
)

type ruleInfo struct {
	code        string
	name        string
	description string
}

var ruleInfos = map[Rule]ruleInfo{
	SER001Syntax: {
		"SER001", "Syntax",
		"Directive text must follow the error declaration grammar.",
	},
	SER002InheritedFields: {
		"SER002", "InheritedFields",
		"Inherited variants cannot declare context fields.",
	},
	SER003UnknownDirective: {
		"SER003", "UnknownDirective",
		"Only smarterr:errors, smarterr:set, smarterr:mod and errorset directives exist.",
	},
	SER004DetachedDirective: {
		"SER004", "DetachedDirective",
		"The directive must be a part of a declaration doc comment.",
	},
	SER005MisplacedDirective: {
		"SER005", "MisplacedDirective",
		"Directives inside declaration bodies are not processed.",
	},
	SER010WrongItemKind: {
		"SER010", "WrongItemKind",
		"The directive is applied to a declaration of the wrong kind.",
	},
	SER011MissingResults: {
		"SER011", "MissingResults",
		"Errorset functions must have results.",
	},
	SER012ErrorsetArity: {
		"SER012", "ErrorsetArity",
		"Errorset functions must return exactly a value and an error union.",
	},
	SER013ErrorsetShape: {
		"SER013", "ErrorsetShape",
		"The error result of an errorset function must be a union of named types.",
	},
	SER014MethodMarkingArguments: {
		"SER014", "MethodMarkingArguments",
		"Method markings of an errorset module must not have arguments.",
	},
	SER015ParentTypeInModule: {
		"SER015", "ParentTypeInModule",
		"Declarations moved into a module cannot refer to types of the template package.",
	},
	SER016UnknownQualifier: {
		"SER016", "UnknownQualifier",
		"Package qualifiers used by types must be imported by the template.",
	},
	SER020LocalConflict: {
		"SER020", "LocalConflict",
		"A variant cannot be both declared locally and passed through.",
	},
	SER021HandledPassThrough: {
		"SER021", "HandledPassThrough",
		"A variant cannot be both handled and passed through.",
	},
	SER022DuplicateBlock: {
		"SER022", "DuplicateBlock",
		"A source set can be inherited by a single block only.",
	},
	SER023InheritanceCycle: {
		"SER023", "InheritanceCycle",
		"Error sets cannot inherit from each other cyclically.",
	},
	SER030UnknownSourceSet: {
		"SER030", "UnknownSourceSet",
		"The inherited set is not declared in the package.",
	},
	SER031UnknownVariant: {
		"SER031", "UnknownVariant",
		"The source set has no such variant.",
	},
	SER032SourceKindMismatch: {
		"SER032", "SourceKindMismatch",
		"Redeclared variants must keep the cause kind of the source set.",
	},
	SER033UnlistedVariant: {
		"SER033", "UnlistedVariant",
		"Every variant of the source set must be either passed through or handled.",
	},
	SER034DuplicateSet: {
		"SER034", "DuplicateSet",
		"Error set names must be unique within a package.",
	},
	SER035DuplicateVariant: {
		"SER035", "DuplicateVariant",
		"A variant can be declared by a single set of a package only.",
	},
	SER036CrossPackageInheritance: {
		"SER036", "CrossPackageInheritance",
		"Variants can only pass through between sets generated into the same package.",
	},
	SER040DiscardedHelperResult: {
		"SER040", "DiscardedHelperResult",
		"Results of throw and raise helpers must be used.",
	},
}

// String returns the canonical code and short name of the rule.
// Example: "SER001: Syntax"
func (r Rule) String() string {
	info, ok := ruleInfos[r]
	if !ok {
		return fmt.Sprintf("rule-unknown(%d)", r)
	}

	return info.code + ": " + info.name
}

// Code returns the bare code of the rule, like "SER001".
func (r Rule) Code() string {
	info, ok := ruleInfos[r]
	if !ok {
		return fmt.Sprintf("SER?%d", r)
	}

	return info.code
}

// Description returns the human-readable explanation of the rule.
func (r Rule) Description() string {
	info, ok := ruleInfos[r]
	if !ok {
		return fmt.Sprintf("unknown-rule(%d)", r)
	}

	return info.description
}

// All returns every known rule in code order.
func All() []Rule {
	res := make([]Rule, 0, len(ruleInfos))
	for r := SER001Syntax; r <= SER040DiscardedHelperResult; r++ {
		res = append(res, r)
	}

	return res
}
