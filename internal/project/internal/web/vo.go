// Copyright 2024 dpickhq
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

import (
	"github.com/dpickhq/dpick/internal/project/internal/domain"
	"github.com/ecodeclub/ekit/slice"
)

type ProjectReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Status      string `json:"status"`
	Type        string `json:"type"`

	TotalMMRequired int `json:"totalMMRequired"`
	ConfirmedMM     int `json:"confirmedMM"`
	InDiscussionMM  int `json:"inDiscussionMM"`
}

func (req ProjectReq) toDomain(id int64) domain.Project {
	return domain.Project{
		Id:              id,
		Title:           req.Title,
		Description:     req.Description,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		Status:          domain.Status(req.Status),
		Type:            domain.Type(req.Type),
		TotalMMRequired: req.TotalMMRequired,
		ConfirmedMM:     req.ConfirmedMM,
		InDiscussionMM:  req.InDiscussionMM,
	}
}

type TeamReq struct {
	// DeveloperIds 指派对话框整批提交
	DeveloperIds []int64 `json:"developerIds"`
	// DeveloperId 单个添加的旧口，和 DeveloperIds 二选一
	DeveloperId int64 `json:"developerId"`
}

func (req TeamReq) ids() []int64 {
	if len(req.DeveloperIds) > 0 {
		// 对话框按集合语义提交，payload 里的重复 id 只算一次
		sel := domain.NewSelection()
		for _, id := range req.DeveloperIds {
			if !sel.Contains(id) {
				sel.Toggle(id)
			}
		}
		return sel.Ids()
	}
	if req.DeveloperId > 0 {
		return []int64{req.DeveloperId}
	}
	return nil
}

type AnnouncementReq struct {
	Channel    string   `json:"channel"`
	Content    string   `json:"content"`
	Recipients []string `json:"recipients"`
}

type Project struct {
	Id int64  `json:"id"`
	SN string `json:"sn"`

	Title       string `json:"title"`
	Description string `json:"description"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Status      string `json:"status"`
	Type        string `json:"type"`

	Team []int64 `json:"team"`

	TotalMMRequired int `json:"totalMMRequired"`
	ConfirmedMM     int `json:"confirmedMM"`
	InDiscussionMM  int `json:"inDiscussionMM"`
	// RequiredUnfilled 还缺的人月数，服务端算好给前端
	RequiredUnfilled int `json:"requiredUnfilled"`

	Announcements []Announcement `json:"announcements,omitempty"`

	Utime int64 `json:"utime"`
}

func newProject(p domain.Project) Project {
	return Project{
		Id:               p.Id,
		SN:               p.SN,
		Title:            p.Title,
		Description:      p.Description,
		StartDate:        p.StartDate,
		EndDate:          p.EndDate,
		Status:           string(p.Status),
		Type:             string(p.Type),
		Team:             p.Team,
		TotalMMRequired:  p.TotalMMRequired,
		ConfirmedMM:      p.ConfirmedMM,
		InDiscussionMM:   p.InDiscussionMM,
		RequiredUnfilled: p.RequiredUnfilled(),
		Announcements: slice.Map(p.Announcements, func(idx int, src domain.Announcement) Announcement {
			return newAnnouncement(src)
		}),
		Utime: p.Utime,
	}
}

type Announcement struct {
	Id         int64    `json:"id"`
	ProjectId  int64    `json:"projectId"`
	SentDate   string   `json:"sentDate"`
	Channel    string   `json:"channel"`
	Content    string   `json:"content"`
	Recipients []string `json:"recipients"`
}

func newAnnouncement(a domain.Announcement) Announcement {
	return Announcement{
		Id:         a.Id,
		ProjectId:  a.ProjectId,
		SentDate:   a.SentDate,
		Channel:    string(a.Channel),
		Content:    a.Content,
		Recipients: a.Recipients,
	}
}
