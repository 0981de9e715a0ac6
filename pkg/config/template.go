package config

import (
	"bytes"
	"fmt"
)

// templateHeader documents every key written by GenerateTemplate.
const templateHeader = `# codetestguard configuration
#
# format:     default artifact format for "codetestguard render" (html, json, yaml)
# output_dir: directory artifacts are written to
# time_zone:  IANA zone for report timestamps, e.g. Asia/Shanghai (empty = local)
# log_level:  debug, info, warn or error
# file_mode:  octal permissions for written artifacts
#
# Every key can be overridden with a CODETESTGUARD_* environment variable,
# e.g. CODETESTGUARD_TIME_ZONE=Asia/Shanghai.
`

// GenerateTemplate returns a commented configuration file holding the
// default values.
func GenerateTemplate() ([]byte, error) {
	body, err := NewConfig().ToYAML()
	if err != nil {
		return nil, fmt.Errorf("generate template: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(templateHeader)
	buf.WriteByte('\n')
	buf.Write(body)
	return buf.Bytes(), nil
}
