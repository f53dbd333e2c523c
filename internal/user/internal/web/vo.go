package web

import (
	"github.com/dpickhq/dpick/internal/user/internal/domain"
)

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserReq 创建和更新共用。更新时密码留空表示不改
type UserReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Avatar   string `json:"profileImage,omitempty"`
	Role     string `json:"role"`
}

func (r UserReq) toDomain(id int64) domain.User {
	return domain.User{
		Id:       id,
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Avatar:   r.Avatar,
		Role:     domain.Role(r.Role),
	}
}

// Profile 对外的用户形态，永远不带密码
type Profile struct {
	Id     int64  `json:"id"`
	SN     string `json:"sn,omitempty"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"profileImage,omitempty"`
	Role   string `json:"role"`
}

func newProfile(u domain.User) Profile {
	return Profile{
		Id:     u.Id,
		SN:     u.SN,
		Name:   u.Name,
		Email:  u.Email,
		Avatar: u.Avatar,
		Role:   u.Role.String(),
	}
}
