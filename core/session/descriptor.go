package session

import (
	"encoding/xml"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

type webDescriptor struct {
	SessionTimeout *string `xml:"session-config>session-timeout"`
}

// TimeoutFromDescriptor reads the session-config/session-timeout value from a
// web.xml style descriptor.
func TimeoutFromDescriptor(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	var wd webDescriptor
	if err := xml.NewDecoder(f).Decode(&wd); err != nil {
		return 0, fmt.Errorf("decode %s: %w", path, err)
	}
	if wd.SessionTimeout == nil {
		return 0, ErrNoSessionTimeout
	}

	timeout, err := strconv.Atoi(strings.TrimSpace(*wd.SessionTimeout))
	if err != nil {
		return 0, errors.Join(ErrInvalidSessionTimeout, err)
	}
	return timeout, nil
}
