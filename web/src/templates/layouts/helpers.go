package layouts

import "net/url"

// CalculateTitle builds the document title from the page title and app name.
func CalculateTitle(title, appName string) string {
	if title != "" {
		return title + " - " + appName
	}
	return appName
}

// TopicURL is the address of a topic page. Keys are used verbatim, so they are
// path-escaped here rather than normalized.
func TopicURL(key string) string {
	return "/topics/" + url.PathEscape(key)
}
