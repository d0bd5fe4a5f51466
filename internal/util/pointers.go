package util

import "github.com/google/uuid"

func StrPtr(s string) *string {
	return &s
}

func Int64Ptr(i int64) *int64 {
	return &i
}

func FloatPtr(f float64) *float64 {
	return &f
}

func UUIDPtr(id uuid.UUID) *uuid.UUID {
	return &id
}
