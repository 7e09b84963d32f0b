package auth

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	Username    string `json:"username"`
	ExpiresIn   int64  `json:"expiresIn"`
}

type MeResponse struct {
	Username string `json:"username"`
}
