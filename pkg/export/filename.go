package export

import "strconv"

const (
	documentNoun = "质检报告"
	dataPrefix   = "analysis-report-"
)

// DocumentFilename names an HTML report. The project-qualified form is
// used only when projectName is non-empty.
func DocumentFilename(id int64, projectName string) string {
	base := documentNoun + "-" + strconv.FormatInt(id, 10) + ".html"
	if projectName == "" {
		return base
	}
	return projectName + "-" + base
}

// DataFilename names a JSON dump. There is no project-qualified form.
func DataFilename(id int64) string {
	return dataPrefix + strconv.FormatInt(id, 10) + ".json"
}

// YAMLFilename names a YAML dump, parallel to DataFilename.
func YAMLFilename(id int64) string {
	return dataPrefix + strconv.FormatInt(id, 10) + ".yaml"
}
