// Package auth provides local username/password authentication.
//
// Passwords are hashed with Argon2id using the library defaults. Hashes in
// the legacy bcrypt format are still accepted and are replaced with an
// Argon2id hash on the next successful login.
//
// Login never tells the caller whether the user was missing or the password
// was wrong: both return ErrInvalidCredentials after one hash verification.
//
// Example usage:
//
//	provider := auth.NewLocalProvider(query.New(db))
//
//	id, err := provider.Register(ctx, auth.RegisterInput{
//	    Username: "alice",
//	    Email:    "alice@example.com",
//	    Password: "secret",
//	})
//
//	user, err := provider.Login(ctx, "alice", "secret")
//
//	// Protect admin routes
//	admin := app.Group("/api/admin", auth.RequireToken(cfg.Webserver.AdminToken))
package auth
