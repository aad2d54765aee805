package hess

import (
	"strconv"
)

// Record is the per-chart result persisted at the end of a session.
// Yaw holds the first angle component (Vertical, which drives x) and Pitch
// the second, matching the column layout of RecordHeader.
type Record struct {
	Name        string
	FixingYaw   float64
	FixingPitch float64
	PointYaw    float64
	PointPitch  float64
	// Valid is false when the chart has no point or its point could not be
	// converted back to angles. PointYaw and PointPitch are NaN then.
	Valid bool
}

// RecordHeader returns the column names of Record.Fields.
func RecordHeader() []string {
	return []string{"Name", "Fixing Point Yaw", "Fixing Point Pitch", "Point Yaw", "Point Pitch"}
}

// Fields returns the record formatted in RecordHeader order.
func (r Record) Fields() []string {
	return []string{
		r.Name,
		formatAngle(r.FixingYaw),
		formatAngle(r.FixingPitch),
		formatAngle(r.PointYaw),
		formatAngle(r.PointPitch),
	}
}

func formatAngle(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Record returns the chart's fixing point and the angles of its current point.
func (c *Chart) Record() Record {
	r := Record{
		Name:        c.cfg.Name,
		FixingYaw:   c.cfg.Fixing.Vertical,
		FixingPitch: c.cfg.Fixing.Horizontal,
	}
	a, err := c.PointAngles()
	r.PointYaw, r.PointPitch = a.Vertical, a.Horizontal
	r.Valid = err == nil
	return r
}
