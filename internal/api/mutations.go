package api

import (
	"context"
	"net/url"

	"campus-cli/internal/model"
)

func (c *Client) CreateModule(ctx context.Context, in model.ModuleInput) (model.Module, error) {
	var out model.Module
	if err := c.do(ctx, "POST", "/api/modules", in, &out); err != nil {
		return model.Module{}, err
	}
	return out, nil
}

func (c *Client) CreateLesson(ctx context.Context, in model.LessonInput) (model.Lesson, error) {
	var out model.Lesson
	if err := c.do(ctx, "POST", "/api/lessons", in, &out); err != nil {
		return model.Lesson{}, err
	}
	return out, nil
}

func (c *Client) UpdateModule(ctx context.Context, moduleID string, in model.ModuleInput) (model.Module, error) {
	var out model.Module
	if err := c.do(ctx, "PUT", "/api/modules/"+url.PathEscape(moduleID), in, &out); err != nil {
		return model.Module{}, err
	}
	return out, nil
}

func (c *Client) DeleteModule(ctx context.Context, moduleID string) error {
	return c.do(ctx, "DELETE", "/api/modules/"+url.PathEscape(moduleID), nil, nil)
}
