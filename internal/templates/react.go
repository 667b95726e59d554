package templates

import (
	"fmt"
	"strings"

	"structgen/internal/importpath"
)

func renderReactComponent(filePath string) string {
	name := ClassName(stem(filePath))

	return fmt.Sprintf(`import React from 'react'

interface %[1]sProps {
  // TODO: Define component props
}

export const %[1]s: React.FC<%[1]sProps> = (props) => {
  return (
    <div className="%[2]s">
      {/* TODO: Implement %[1]s component */}
      <h1>%[1]s</h1>
    </div>
  )
}

export default %[1]s
`, name, strings.ToLower(name))
}

func renderReactTest(filePath string) string {
	name := ClassName(testSubject(stem(filePath)))
	importRef := importpath.Component(filePath, name)

	return fmt.Sprintf(`import React from 'react'
import { render, screen } from '@testing-library/react'
import { %[1]s } from '%[2]s'

describe('%[1]s', () => {
  it('renders correctly', () => {
    render(<%[1]s />)
    // TODO: Add test assertions
    expect(screen.getByText('%[1]s')).toBeInTheDocument()
  })

  it('handles props correctly', () => {
    // TODO: Test component props
  })
})
`, name, importRef)
}

func renderReactHook(filePath string) string {
	hook := stem(filePath)
	returnType := ClassName(hook) + "Return"

	return fmt.Sprintf(`import { useState, useEffect } from 'react'

interface %[2]s {
  // TODO: Define hook return type
  data: any
  loading: boolean
  error: string | null
}

export const %[1]s = (): %[2]s => {
  const [data, setData] = useState<any>(null)
  const [loading, setLoading] = useState<boolean>(false)
  const [error, setError] = useState<string | null>(null)

  useEffect(() => {
    // TODO: Implement hook logic
  }, [])

  return {
    data,
    loading,
    error
  }
}

export default %[1]s
`, hook, returnType)
}

func renderFrontendService(filePath string) string {
	name := ClassName(stem(filePath))

	return fmt.Sprintf(`import { BaseService } from '../base/BaseService'

export class %[1]s extends BaseService {
  // TODO: Implement %[1]s methods

  async process(data: any): Promise<any> {
    try {
      if (!this.validateInput(data)) {
        throw new Error('Invalid input data')
      }

      // TODO: Implement processing logic
      return { success: true, data }
    } catch (error) {
      this.handleError(error)
    }
  }

  // TODO: Add specific service methods
}

export default new %[1]s()
`, name)
}

func renderFrontendBaseService() string {
	return `export abstract class BaseService {
  // TODO: Implement base service methods

  protected validateInput(input: any): boolean {
    // TODO: Add validation logic
    return input !== null && input !== undefined
  }

  protected handleError(error: any): never {
    console.error('Service error:', error)
    throw new Error('Service error: ' + error)
  }

  protected async makeRequest<T>(operation: () => Promise<T>): Promise<T> {
    try {
      return await operation()
    } catch (error) {
      this.handleError(error)
    }
  }
}
`
}
