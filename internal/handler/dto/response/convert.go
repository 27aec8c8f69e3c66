package response

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// Responses expose ids as strings and instants as Unix seconds.
var copyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: uuid.UUID{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(uuid.UUID).String(), nil
			},
		},
		{
			SrcType: (*uuid.UUID)(nil),
			DstType: (*string)(nil),
			Fn: func(src any) (any, error) {
				id := src.(*uuid.UUID)
				if id == nil {
					return (*string)(nil), nil
				}
				s := id.String()
				return &s, nil
			},
		},
		{
			SrcType: time.Time{},
			DstType: int64(0),
			Fn: func(src any) (any, error) {
				return src.(time.Time).Unix(), nil
			},
		},
		{
			SrcType: (*time.Time)(nil),
			DstType: (*int64)(nil),
			Fn: func(src any) (any, error) {
				t := src.(*time.Time)
				if t == nil {
					return (*int64)(nil), nil
				}
				unix := t.Unix()
				return &unix, nil
			},
		},
	},
}

// copyInto only fails on mismatched mapping types, which is a programming
// error; the recovery middleware turns the panic into a 500.
func copyInto(to, from any) {
	if err := copier.CopyWithOption(to, from, copyOption); err != nil {
		panic(fmt.Sprintf("response mapping %T -> %T: %v", from, to, err))
	}
}
