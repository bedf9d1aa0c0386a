package fixture

const (
	transformPrefix = "module.exports = function(fileInfo, api, options) { "
	transformSuffix = " }"
)

// TransformSource wraps body in a module exporting a single
// function(fileInfo, api, options). The body is inserted as is.
func TransformSource(body string) string {
	return transformPrefix + body + transformSuffix
}
