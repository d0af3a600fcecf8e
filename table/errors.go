package table

import "errors"

// Definition validation errors.
var (
	// ErrNameRequired indicates that a definition name is required.
	ErrNameRequired = errors.New("definition name is required")
	// ErrAlphabetRequired indicates that at least one symbol is required.
	ErrAlphabetRequired = errors.New("at least one alphabet symbol is required")
	// ErrStatesRequired indicates that at least one state is required.
	ErrStatesRequired = errors.New("at least one state is required")
	// ErrInitialRequired indicates that an initial state is required.
	ErrInitialRequired = errors.New("initial state is required")
	// ErrInitialNotDeclared indicates that the initial state is not declared.
	ErrInitialNotDeclared = errors.New("initial state is not declared")
	// ErrAcceptNotDeclared indicates that an accept state is not declared.
	ErrAcceptNotDeclared = errors.New("accept state is not declared")
	// ErrDuplicateState indicates that a state is declared twice.
	ErrDuplicateState = errors.New("duplicate state")
	// ErrDuplicateSymbol indicates that an alphabet symbol is declared twice.
	ErrDuplicateSymbol = errors.New("duplicate alphabet symbol")
	// ErrEmptyName indicates that a state or symbol name is empty.
	ErrEmptyName = errors.New("empty name")
	// ErrReservedState indicates that a definition declares the sink state name.
	ErrReservedState = errors.New("state name is reserved")
	// ErrRuleFromNotDeclared indicates that a rule's source state is not declared.
	ErrRuleFromNotDeclared = errors.New("rule source state is not declared")
	// ErrRuleToNotDeclared indicates that a rule's target state is not declared.
	ErrRuleToNotDeclared = errors.New("rule target state is not declared")
	// ErrRuleSymbolNotDeclared indicates that a rule's symbol is not in the alphabet.
	ErrRuleSymbolNotDeclared = errors.New("rule symbol is not in the alphabet")
	// ErrNondeterministicRule indicates two rules for the same state and symbol.
	ErrNondeterministicRule = errors.New("more than one rule for state and symbol")
	// ErrUnreachableState indicates a state with no path from the initial state.
	ErrUnreachableState = errors.New("state is unreachable from the initial state")
)

// Source errors.
var (
	// ErrDefinitionNotFound indicates that a source has no definition by that name.
	ErrDefinitionNotFound = errors.New("definition not found")
	// ErrUnsupportedExtension indicates a definition file with an unknown extension.
	ErrUnsupportedExtension = errors.New("unsupported definition file extension")
)
