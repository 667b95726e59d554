package templates

import (
	"fmt"
	"strings"
)

func renderController(filePath string) string {
	name := ClassName(stem(filePath))

	return fmt.Sprintf(`import { Request, Response } from 'express'
import { BaseController } from './base/BaseController'

export class %[1]s extends BaseController {
  // TODO: Implement %[1]s methods

  async index(req: Request, res: Response) {
    try {
      // TODO: Implement index method
      this.sendResponse(res, { message: '%[1]s index' })
    } catch (error) {
      this.sendError(res, 'Error in %[1]s: ' + error)
    }
  }

  async show(req: Request, res: Response) {
    try {
      const id = req.params.id
      // TODO: Implement show method
      this.sendResponse(res, { message: '%[1]s show: ' + id })
    } catch (error) {
      this.sendError(res, 'Error in %[1]s: ' + error)
    }
  }

  async create(req: Request, res: Response) {
    try {
      const data = req.body
      // TODO: Implement create method
      this.sendResponse(res, { message: '%[1]s created', data }, 201)
    } catch (error) {
      this.sendError(res, 'Error in %[1]s: ' + error)
    }
  }

  async update(req: Request, res: Response) {
    try {
      const id = req.params.id
      const data = req.body
      // TODO: Implement update method
      this.sendResponse(res, { message: '%[1]s updated: ' + id, data })
    } catch (error) {
      this.sendError(res, 'Error in %[1]s: ' + error)
    }
  }

  async delete(req: Request, res: Response) {
    try {
      const id = req.params.id
      // TODO: Implement delete method
      this.sendResponse(res, { message: '%[1]s deleted: ' + id })
    } catch (error) {
      this.sendError(res, 'Error in %[1]s: ' + error)
    }
  }
}
`, name)
}

func renderBaseController() string {
	return `import { Request, Response } from 'express'

export abstract class BaseController {
  // TODO: Implement base controller methods

  protected sendResponse(res: Response, data: any, statusCode: number = 200) {
    res.status(statusCode).json(data)
  }

  protected sendError(res: Response, message: string, statusCode: number = 500) {
    res.status(statusCode).json({ error: message })
  }

  protected validateRequired(data: any, fields: string[]): boolean {
    for (const field of fields) {
      if (!data[field]) {
        return false
      }
    }
    return true
  }

  protected sanitizeInput(data: any): any {
    // TODO: Implement input sanitization
    return data
  }
}
`
}

func renderBackendService(filePath string) string {
	name := ClassName(stem(filePath))

	return fmt.Sprintf(`import { BaseService } from './base/BaseService'

export class %[1]s extends BaseService {
  // TODO: Implement %[1]s methods

  async process(data: any): Promise<any> {
    try {
      if (!this.validateInput(data)) {
        throw new Error('Invalid input data')
      }

      // TODO: Implement service logic
      return { success: true, data }
    } catch (error) {
      this.handleError(error)
    }
  }

  async findById(id: string): Promise<any> {
    try {
      // TODO: Implement find by ID logic
      return { id, found: true }
    } catch (error) {
      this.handleError(error)
    }
  }

  async create(data: any): Promise<any> {
    try {
      if (!this.validateInput(data)) {
        throw new Error('Invalid input data')
      }

      // TODO: Implement create logic
      return { created: true, data }
    } catch (error) {
      this.handleError(error)
    }
  }

  async update(id: string, data: any): Promise<any> {
    try {
      if (!this.validateInput(data)) {
        throw new Error('Invalid input data')
      }

      // TODO: Implement update logic
      return { updated: true, id, data }
    } catch (error) {
      this.handleError(error)
    }
  }

  async delete(id: string): Promise<any> {
    try {
      // TODO: Implement delete logic
      return { deleted: true, id }
    } catch (error) {
      this.handleError(error)
    }
  }
}

export default new %[1]s()
`, name)
}

func renderBackendBaseService() string {
	return `export abstract class BaseService {
  // TODO: Implement base service methods

  protected validateInput(input: any): boolean {
    return input !== null && input !== undefined
  }

  protected handleError(error: any): never {
    console.error('Service error:', error)
    throw new Error('Service error: ' + error)
  }

  protected async executeWithTransaction<T>(operation: () => Promise<T>): Promise<T> {
    // TODO: Implement database transaction wrapper
    try {
      return await operation()
    } catch (error) {
      this.handleError(error)
    }
  }

  protected sanitizeData(data: any): any {
    // TODO: Implement data sanitization
    return data
  }

  protected validateSchema(data: any, schema: any): boolean {
    // TODO: Implement schema validation
    return true
  }
}
`
}

func renderModel(filePath string) string {
	name := ClassName(stem(filePath))

	return fmt.Sprintf(`import { BaseModel } from './BaseModel'

export interface I%[1]s {
  id?: string
  createdAt?: Date
  updatedAt?: Date
  // TODO: Add %[1]s properties
}

export class %[1]s extends BaseModel implements I%[1]s {
  public id?: string
  public createdAt?: Date
  public updatedAt?: Date

  // TODO: Add %[1]s properties

  constructor(data?: Partial<I%[1]s>) {
    super()
    if (data) {
      Object.assign(this, data)
    }
  }

  // TODO: Add %[1]s methods

  validate(): boolean {
    // TODO: Implement validation logic
    return true
  }

  toJSON(): I%[1]s {
    return {
      id: this.id,
      createdAt: this.createdAt,
      updatedAt: this.updatedAt,
      // TODO: Add other properties
    }
  }
}
`, name)
}

func renderBaseModel() string {
	return `export abstract class BaseModel {
  // TODO: Implement base model methods

  abstract validate(): boolean

  abstract toJSON(): object

  protected touch(): void {
    // TODO: Update timestamps on mutation
  }
}
`
}

func renderRepository(filePath string) string {
	name := ClassName(stem(filePath))
	model := strings.TrimSuffix(name, "Repository")
	table := strings.ToLower(model) + "s"

	return fmt.Sprintf(`import { BaseRepository } from './base/BaseRepository'
import { %[2]s, I%[2]s } from '../models/%[2]s'

export class %[1]s extends BaseRepository<%[2]s> {

  async findById(id: string): Promise<%[2]s | null> {
    try {
      // TODO: Implement database query
      const data = await this.executeQuery('SELECT * FROM %[3]s WHERE id = ?', [id])
      return data ? new %[2]s(data) : null
    } catch (error) {
      this.handleError(error)
    }
  }

  async findAll(): Promise<%[2]s[]> {
    try {
      // TODO: Implement database query
      const results = await this.executeQuery('SELECT * FROM %[3]s')
      return results.map((data: any) => new %[2]s(data))
    } catch (error) {
      this.handleError(error)
    }
  }

  async create(data: I%[2]s): Promise<%[2]s> {
    try {
      // TODO: Implement database insert
      const result = await this.executeQuery(
        'INSERT INTO %[3]s (...) VALUES (...)',
        Object.values(data)
      )
      return new %[2]s({ ...data, id: result.insertId })
    } catch (error) {
      this.handleError(error)
    }
  }

  async update(id: string, data: Partial<I%[2]s>): Promise<%[2]s | null> {
    try {
      // TODO: Implement database update
      await this.executeQuery(
        'UPDATE %[3]s SET ... WHERE id = ?',
        [...Object.values(data), id]
      )
      return this.findById(id)
    } catch (error) {
      this.handleError(error)
    }
  }

  async delete(id: string): Promise<boolean> {
    try {
      // TODO: Implement database delete
      const result = await this.executeQuery('DELETE FROM %[3]s WHERE id = ?', [id])
      return result.affectedRows > 0
    } catch (error) {
      this.handleError(error)
    }
  }
}

export default new %[1]s()
`, name, model, table)
}

func renderBaseRepository() string {
	return `export abstract class BaseRepository<T> {
  // TODO: Implement base repository methods

  protected async executeQuery(sql: string, params: any[] = []): Promise<any> {
    // TODO: Wire to the database connection pool
    throw new Error('executeQuery not implemented')
  }

  protected handleError(error: any): never {
    console.error('Repository error:', error)
    throw new Error('Repository error: ' + error)
  }
}
`
}
