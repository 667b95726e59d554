package templates

import (
	"fmt"
	"path"
	"strings"
)

func renderMiddleware(filePath string) string {
	name := stem(filePath)
	class := ClassName(name)

	return fmt.Sprintf(`import { Request, Response, NextFunction } from 'express'

/**
 * %[2]s middleware
 * TODO: Add description of what this middleware does
 */

export interface %[2]sOptions {
  // TODO: Add configuration options
  enabled?: boolean
}

export function %[1]s(options: %[2]sOptions = {}) {
  return (req: Request, res: Response, next: NextFunction) => {
    try {
      // TODO: Implement middleware logic

      // Continue to next middleware
      next()
    } catch (error) {
      console.error('%[2]s error:', error)
      res.status(500).json({ error: 'Internal server error' })
    }
  }
}

// Async middleware wrapper
export const asyncMiddleware = (fn: (req: Request, res: Response, next: NextFunction) => Promise<void>) => {
  return (req: Request, res: Response, next: NextFunction) => {
    Promise.resolve(fn(req, res, next)).catch(next)
  }
}

export default %[1]s
`, name, class)
}

func renderRoute(filePath string) string {
	name := stem(filePath)
	controller := ClassName(name)
	if !strings.HasSuffix(controller, "Controller") {
		controller += "Controller"
	}

	return fmt.Sprintf(`import { Router } from 'express'
import { %[2]s } from '../controllers/%[2]s'
// TODO: Import middleware as needed
// import { authMiddleware } from '../middleware/auth'

const router = Router()
const controller = new %[2]s()

/**
 * %[2]s routes
 * TODO: Add description of these routes
 */

// GET /%[1]s
router.get('/',
  // TODO: Add middleware if needed
  controller.index.bind(controller)
)

// GET /%[1]s/:id
router.get('/:id',
  controller.show.bind(controller)
)

// POST /%[1]s
router.post('/',
  // TODO: Add validation middleware
  controller.create.bind(controller)
)

// PUT /%[1]s/:id
router.put('/:id',
  controller.update.bind(controller)
)

// DELETE /%[1]s/:id
router.delete('/:id',
  controller.delete.bind(controller)
)

export default router
`, strings.ToLower(name), controller)
}

func renderMigration(filePath string) string {
	name := stem(filePath)

	return fmt.Sprintf(`-- %[1]s
-- TODO: Add SQL for %[1]s

CREATE TABLE IF NOT EXISTS example (
  id INTEGER PRIMARY KEY,
  created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`, name)
}

func renderIndex(filePath string) string {
	parent := path.Base(path.Dir(filePath))
	if parent == "." || parent == "/" {
		parent = "module"
	}
	title := ClassName(parent)

	return fmt.Sprintf(`/**
 * %[2]s module exports
 * This file exports all public APIs from the %[1]s module
 */

// TODO: Add exports for %[1]s module

// Example exports:
// export { SomeClass } from './SomeClass'
// export type { SomeType } from './types'

export {}
`, parent, title)
}

func renderTypes(filePath string) string {
	base := ClassName(stem(filePath))

	return fmt.Sprintf(`/**
 * Type definitions for %[1]s
 * TODO: Add description of these types
 */

// Base interface
export interface I%[1]s {
  id: string
  createdAt: Date
  updatedAt: Date
  // TODO: Add specific properties
}

// Create/Update types
export interface Create%[1]sRequest {
  // TODO: Add required fields for creation
}

export interface Update%[1]sRequest {
  // TODO: Add fields that can be updated
}

// Response types
export interface %[1]sResponse {
  success: boolean
  data?: I%[1]s
  error?: string
}

export interface %[1]sListResponse {
  success: boolean
  data?: I%[1]s[]
  total?: number
  page?: number
  limit?: number
  error?: string
}

// Filter and query types
export interface %[1]sFilter {
  // TODO: Add filter criteria
  search?: string
  status?: string
  createdAfter?: Date
  createdBefore?: Date
}

export interface %[1]sQuery {
  filter?: %[1]sFilter
  page?: number
  limit?: number
}

// TODO: Add more specific types as needed
export type %[1]sStatus = 'active' | 'inactive' | 'pending' | 'archived'
`, base)
}

func renderConstants(filePath string) string {
	return `/**
 * Application constants
 * TODO: Add project-specific constants
 */

// API Configuration
export const API_CONFIG = {
  BASE_URL: process.env.REACT_APP_API_URL || 'http://localhost:3001',
  TIMEOUT: 30000,
  RETRY_ATTEMPTS: 3,
  RETRY_DELAY: 1000
} as const

// Application Routes
export const ROUTES = {
  HOME: '/',
  DASHBOARD: '/dashboard',
  SETTINGS: '/settings',
  LOGIN: '/login'
} as const

// Storage Keys
export const STORAGE_KEYS = {
  AUTH_TOKEN: 'auth_token',
  USER_PREFERENCES: 'user_preferences'
} as const

// Notification Types
export const NOTIFICATION_TYPES = {
  INFO: 'info',
  SUCCESS: 'success',
  WARNING: 'warning',
  ERROR: 'error'
} as const

// Validation Rules
export const VALIDATION = {
  PASSWORD_MIN_LENGTH: 8,
  USERNAME_MIN_LENGTH: 3,
  USERNAME_MAX_LENGTH: 50
} as const

// UI Configuration
export const UI_CONFIG = {
  DEFAULT_PAGE_SIZE: 20,
  MAX_PAGE_SIZE: 100,
  DEBOUNCE_DELAY: 300,
  TOAST_DURATION: 5000
} as const

// TODO: Add more constants as needed
`
}

func renderUtility(filePath string) string {
	name := stem(filePath)
	class := ClassName(name)

	return fmt.Sprintf(`/**
 * %[2]s utility functions
 * TODO: Add description of what this utility does
 */

// TODO: Add utility functions for %[1]s

export const %[1]s = {
  // TODO: Implement utility methods

  /**
   * Example utility function
   * @param input - Input parameter
   * @returns Processed result
   */
  process(input: any): any {
    // TODO: Implement processing logic
    return input
  },

  /**
   * Validation utility
   * @param data - Data to validate
   * @returns True if valid
   */
  validate(data: any): boolean {
    // TODO: Implement validation logic
    return data !== null && data !== undefined
  }
}

// Individual utility functions can also be exported
export function %[1]sHelper(data: any): any {
  // TODO: Implement helper function
  return data
}

export default %[1]s
`, name, class)
}

func renderGeneric(filePath string) string {
	name := stem(filePath)
	class := ClassName(name)

	switch strings.ToLower(path.Ext(filePath)) {
	case ".ts":
		return fmt.Sprintf(`// %[1]s
// TODO: Implement %[1]s

export class %[2]s {
  // TODO: Add implementation
}

export default %[2]s
`, name, class)
	case ".tsx":
		return fmt.Sprintf(`import React from 'react'

export const %[2]s = () => {
  return (
    <div>
      {/* TODO: Implement %[1]s component */}
      <h1>%[1]s</h1>
    </div>
  )
}

export default %[2]s
`, name, class)
	case ".json":
		return `{
  "TODO": "Add JSON configuration"
}
`
	case ".css":
		return fmt.Sprintf(`/* %[1]s */
/* TODO: Add CSS styles for %[1]s */

.%[2]s {
  /* Add styles here */
}
`, name, strings.ToLower(name))
	case ".sql":
		return renderMigration(filePath)
	default:
		return fmt.Sprintf(`# %[1]s
# TODO: Implement %[1]s
`, name)
	}
}
