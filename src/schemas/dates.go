package schemas

import (
	"fmt"
	"time"
)

// Date accepts both YYYY-MM-DD and RFC3339 timestamps on input and renders
// RFC3339 on output.
type Date struct {
	time.Time
}

// ToTime returns the underlying time.Time value
func (d Date) ToTime() time.Time {
	return d.Time
}

// UnmarshalJSON implements json.Unmarshaler interface
func (d *Date) UnmarshalJSON(data []byte) error {
	str := string(data)
	if len(str) >= 2 && str[0] == '"' && str[len(str)-1] == '"' {
		str = str[1 : len(str)-1]
	}

	if parsed, err := time.Parse(time.RFC3339, str); err == nil {
		d.Time = parsed
		return nil
	}
	parsed, err := time.Parse("2006-01-02", str)
	if err != nil {
		return fmt.Errorf("invalid date format, expected YYYY-MM-DD or RFC3339: %v", err)
	}
	d.Time = parsed
	return nil
}

// MarshalJSON implements json.Marshaler interface
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf(`"%s"`, d.Format(time.RFC3339))), nil
}
