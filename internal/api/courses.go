package api

import (
	"context"
	"net/url"

	"campus-cli/internal/model"
)

func (c *Client) FetchCourses(ctx context.Context) ([]model.Course, error) {
	var out []model.Course
	if err := c.do(ctx, "GET", "/api/courses", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) FetchCourse(ctx context.Context, courseID string) (model.Course, error) {
	var out model.Course
	if err := c.do(ctx, "GET", "/api/courses/"+url.PathEscape(courseID), nil, &out); err != nil {
		return model.Course{}, err
	}
	return out, nil
}

// FetchModules returns the course's modules with nested lessonRefs, in server
// order. The caller replaces its tree wholesale with the result.
func (c *Client) FetchModules(ctx context.Context, courseID string) ([]model.Module, error) {
	var out []model.Module
	if err := c.do(ctx, "GET", "/api/courses/"+url.PathEscape(courseID)+"/modules", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
