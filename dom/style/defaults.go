package style

// Values "default" have the following semantics:
// Treat this as an inherent UA default, which should not be instantiated in memory,
// but rather will be treated implicitely by rendering code.
var nonInherited = map[string]string{
	"position":            "static",
	"background-color":    "default",
	"border-top-color":    "default",
	"border-left-color":   "default",
	"border-right-color":  "default",
	"border-bottom-color": "default",
}

var isDimension = map[string]string{
	"width":          "auto",
	"height":         "auto",
	"min-width":      "none",
	"min-height":     "none",
	"max-width":      "none",
	"max-height":     "none",
	"top":            "0",
	"right":          "0",
	"bottom":         "0",
	"left":           "0",
	"margin-top":     "0",
	"margin-left":    "0",
	"margin-right":   "0",
	"margin-bottom":  "0",
	"padding-top":    "0",
	"padding-left":   "0",
	"padding-right":  "0",
	"padding-bottom": "0",
}

// UserAgentDefault returns the user-agent default property for a given
// element tag and property key. For unknown keys, NullStyle is returned.
func UserAgentDefault(tag string, key string) Property {
	switch key {
	case "display":
		return DisplayForTag(tag)
	default:
		if dim, ok := isDimension[key]; ok {
			return Property(dim)
		}
		if p, ok := nonInherited[key]; ok {
			return Property(p)
		}
	}
	return NullStyle
}

// DisplayForTag returns the default `display` CSS property for an HTML tag.
func DisplayForTag(tag string) Property {
	switch tag {
	case "head", "script", "style", "title", "meta", "link":
		return "none"
	case "html", "aside", "body", "div", "h1", "h2", "h3",
		"h4", "h5", "h6", "ol", "p", "section", "ul", "nav",
		"header", "footer", "article", "form", "table":
		return "block"
	case "li":
		return "list-item"
	case "a", "i", "b", "em", "span", "strong", "code", "img":
		return "inline"
	}
	tracer().Infof("unknown HTML element %s will be set to display: block", tag)
	return "block"
}
