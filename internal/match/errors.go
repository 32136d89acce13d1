package match

import "fmt"

// ConfigError codes.
const (
	CodeBadDimensions = "BAD_DIMENSIONS"
	CodeEmptyCatalog  = "EMPTY_CATALOG"
	CodeCatalogSize   = "CATALOG_SIZE"
	CodeDuplicateTile = "DUPLICATE_TILE"
	CodeBadMinMatch   = "BAD_MIN_MATCH"
	CodeBadMoveLimit  = "BAD_MOVE_LIMIT"
	CodeBadTarget     = "BAD_TARGET"
	CodeBadScoring    = "BAD_SCORING"
	CodeBadAdjacency  = "BAD_ADJACENCY"
)

// ConfigError reports an invalid board, catalog or rule configuration.
type ConfigError struct {
	Code    string
	Message string
}

func (e ConfigError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// misuse panics on a contract violation by the caller.
func misuse(format string, args ...any) {
	panic(fmt.Sprintf("match: "+format, args...))
}
