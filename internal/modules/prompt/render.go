package prompt

import (
	"strconv"
	"strings"
)

// Render fills the template placeholders from req. Each placeholder is
// replaced at its first occurrence only; later occurrences stay literal.
func Render(template string, req Request) string {
	out := template
	out = strings.Replace(out, "{destination}", req.Destination, 1)
	out = strings.Replace(out, "{days}", strconv.Itoa(req.Days), 1)
	out = strings.Replace(out, "{travelingWith}", string(req.TravelingWith), 1)
	out = strings.Replace(out, "{budget}", req.Budget, 1)
	out = strings.Replace(out, "{intensity}", string(req.Intensity), 1)
	return out
}
