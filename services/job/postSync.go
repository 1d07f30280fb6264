package job

import (
	"context"
	"nutritrack-go-worker/enums"
	"nutritrack-go-worker/services/activityLog"
	"nutritrack-go-worker/services/post"
	"nutritrack-go-worker/services/trackLog"
	"nutritrack-go-worker/structs"
)

// PostSyncJobService refreshes the local post cache from the tweet server.
type PostSyncJobService struct {
	Posts *post.PostService
}

func (p *PostSyncJobService) Start(ctx context.Context, param structs.JobQueueParam) []structs.ErrorModel {
	logModel := structs.ActivityLogJsonModel{Type: param.Type, Result: true, Message: "ok"}
	var errs []structs.ErrorModel

	posts, err := p.Posts.Sync(ctx)
	if err != nil {
		errs = append(errs, structs.ErrorModel{ErrorMessage: err.Error()})
		logModel.Result = false
		logModel.Message = err.Error()
		logModel.Messages = errs
	} else {
		logModel.Statistic.TotalRows = len(posts)
	}

	if err := activityLog.Insert(enums.JobPostSync, "posts", "", logModel); err != nil {
		trackLog.Error("insert activity log: "+err.Error(), true)
	}
	return errs
}
