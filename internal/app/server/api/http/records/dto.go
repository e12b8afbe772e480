package records

import (
	"healthsync/internal/domain/snapshot"
)

type decodeInput struct {
	Data string `path:"data" doc:"Encoded snapshot from a share link"`
}

type decodeOutput struct {
	Body snapshot.Snapshot
}
