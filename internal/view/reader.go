package view

import (
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	readerSessionName = "reader-session"
	lastTopicKey      = "last_topic"
)

// RememberTopic stores the key of the topic being read so the index can offer a
// "continue reading" link. Failures only cost the link, so they are returned for
// logging and never block the page.
func RememberTopic(c echo.Context, key string) error {
	sess, err := session.Get(readerSessionName, c)
	if err != nil {
		return err
	}
	sess.Values[lastTopicKey] = key
	return sess.Save(c.Request(), c.Response())
}

// LastTopic returns the key stored by RememberTopic, or "".
func LastTopic(c echo.Context) string {
	sess, err := session.Get(readerSessionName, c)
	if err != nil {
		return ""
	}
	key, _ := sess.Values[lastTopicKey].(string)
	return key
}
