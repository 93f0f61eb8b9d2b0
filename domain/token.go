package domain

import "time"

type DeviceType string

const (
	DeviceTypeDesktop DeviceType = "desktop"
	DeviceTypeMobile  DeviceType = "mobile"
	DeviceTypeTablet  DeviceType = "tablet"
)

type DeviceToken struct {
	Token      string     `bson:"token" json:"token"`
	DeviceType DeviceType `bson:"deviceType,omitempty" json:"deviceType,omitempty"`
	Browser    string     `bson:"browser,omitempty" json:"browser,omitempty"`
	Timestamp  time.Time  `bson:"timestamp" json:"timestamp"`
}
